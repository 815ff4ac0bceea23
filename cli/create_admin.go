package cli

import (
	"fmt"
	"os"

	"lpg-delivery-api/dto"
	"lpg-delivery-api/services"

	"github.com/spf13/cobra"
)

var adminReq dto.SignupRequest

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an ADMIN account",
	Long: `Create an ADMIN account directly in the database so a fresh
installation can be administered. The password may also be supplied
through LPG_ADMIN_PASSWORD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminReq.Password == "" {
			adminReq.Password = os.Getenv("LPG_ADMIN_PASSWORD")
		}
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer closeDB(db)

		auth := services.NewAuthService(services.Deps{DB: db, Log: log}, cfg.Bcrypt.Cost)
		u, err := auth.BootstrapAdmin(cmd.Context(), adminReq)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", u.Username, u.ID)
		return nil
	},
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminReq.Username, "username", "", "admin username")
	f.StringVar(&adminReq.Password, "password", "", "admin password (or LPG_ADMIN_PASSWORD)")
	f.StringVar(&adminReq.Email, "email", "", "admin email")
	f.StringVar(&adminReq.PhoneNumber, "phone", "", "admin phone number")
	f.StringVar(&adminReq.Address, "address", "", "admin address")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(createAdminCmd)
}
