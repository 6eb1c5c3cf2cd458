package main

import (
	"context"
	"fmt"
	"os"

	"clinic-records/cmd/bootstrap"
	"clinic-records/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "clinic-records",
		Short:         "Clinical record keeping for doctors, patients, drugs and visits",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", ".env", "path to the env config file")

	root.AddCommand(newServeCmd(&configPath), newOperatorCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap.New(cmd.Context(), *configPath)
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}

func newOperatorCmd(configPath *string) *cobra.Command {
	operator := &cobra.Command{
		Use:   "operator",
		Short: "Manage operator accounts",
	}

	var req dto.CreateOperatorRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an operator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := bootstrap.New(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Validator.Validate(&req); err != nil {
				return fmt.Errorf("invalid operator: %v", app.Validator.FormatValidationErrors(err))
			}
			user, err := app.Auth.CreateOperator(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s operator %s (%s)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&req.Email, "email", "", "login email")
	create.Flags().StringVar(&req.FullName, "name", "", "full name")
	create.Flags().StringVar(&req.Password, "password", "", "initial password")
	create.Flags().StringVar(&req.Role, "role", "clerk", "admin or clerk")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("password")

	operator.AddCommand(create)
	return operator
}
