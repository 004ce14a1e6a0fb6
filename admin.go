package main

import (
	"fmt"

	"dashboard/internal/models"
	"dashboard/internal/repositories"
	"dashboard/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newAdmin struct {
	name     string
	email    string
	password string
	role     string
	pages    []string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a dashboard administrator",
	Example: `  dashboard create-admin --name "Site Owner" --email owner@example.com --password s3cretpass --role super_admin
  dashboard create-admin --name Editor --email editor@example.com --password s3cretpass --pages products,countries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		admin := &models.Admin{
			Name:         newAdmin.name,
			Email:        newAdmin.email,
			Password:     newAdmin.password,
			Role:         newAdmin.role,
			AllowedPages: newAdmin.pages,
		}
		if err := validator.New().Struct(admin); err != nil {
			return fmt.Errorf("invalid admin: %w", err)
		}

		db, err := openMigrated()
		if err != nil {
			return err
		}
		auth := services.NewAuthService(repositories.NewGORMAdminRepository(db), cfg.JWTSecret, cfg.TokenTTL)
		if err := auth.CreateAdmin(admin); err != nil {
			return err
		}

		logger.Info("Admin created", zap.String("id", admin.ID), zap.String("email", admin.Email), zap.String("role", admin.Role))
		return nil
	},
}

func init() {
	flags := createAdminCmd.Flags()
	flags.StringVar(&newAdmin.name, "name", "", "display name")
	flags.StringVar(&newAdmin.email, "email", "", "login email")
	flags.StringVar(&newAdmin.password, "password", "", "initial password (min 8 characters)")
	flags.StringVar(&newAdmin.role, "role", models.RoleAdmin, "super_admin or admin")
	flags.StringSliceVar(&newAdmin.pages, "pages", nil, "pages an admin may use (products,countries,appearance,paymentSettings,activityLogs)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
