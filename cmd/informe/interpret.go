package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmoralesv/informe/internal/auth"
	"github.com/nmoralesv/informe/internal/cli"
	"github.com/nmoralesv/informe/internal/common"
	"github.com/nmoralesv/informe/internal/interpreter"
	"github.com/nmoralesv/informe/internal/model"
)

func interpretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpret <text>...",
		Short: "Interpret one report request",
		Long: `Interpret a free-text report request and print the extracted report
parameters. All arguments are joined into a single request string.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			asJSON, _ := cmd.Flags().GetBool("json")
			roleName, _ := cmd.Flags().GetString("role")
			formatName, _ := cmd.Flags().GetString("format")

			role := model.Role(roleName)
			if !role.Valid() {
				return common.NewUserError("role must be admin or client",
					fmt.Errorf("%w: %q", common.ErrUnknownRole, roleName))
			}

			result := interpreter.New().Interpret(text)
			result, err := auth.Apply(role, result)
			if err != nil {
				return err
			}

			if formatName != "" {
				format := model.OutputFormat(formatName)
				if !format.Valid() {
					return common.NewUserError("format must be screen, pdf, excel or json",
						fmt.Errorf("unknown output format %q", formatName))
				}
				result.OutputFormat = format
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderInterpretation(result))
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print the interpretation as JSON")
	cmd.Flags().String("role", string(model.RoleAdmin), "caller role (admin, client)")
	cmd.Flags().String("format", "", "override the output format (screen, pdf, excel, json)")

	return cmd
}
