// Package command implements the shaclvalidate cobra command tree,
// grounded on cmd/cayley/command's per-subcommand NewXxxCmd() pattern
// and its viper-backed flag binding.
package command

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the shaclvalidate root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shaclvalidate",
		Short: "Validate an RDF data graph against SHACL shapes",
	}
	root.AddCommand(NewValidateCmd())
	return root
}
