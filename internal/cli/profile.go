package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAddressCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address [PATH VALUE]",
		Short: "Show or edit the address profile",
		Long: `Without arguments, print the address profile. With PATH and VALUE, set
one field. PATH is a profile field (fullName, email, phone, effectiveDate)
or oldAddress./newAddress. followed by street, houseNo, postalCode, city,
state or country.`,
		Example: "  addressit address newAddress.city Berlin\n  addressit address email ''",
		Args:    addressArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()
			s := env.session

			if len(args) == 2 {
				if err := s.UpdateAddress(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
			}

			str := s.Strings()
			ap := s.State().AddressProfile
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\t%s\n", str.FullName, ap.FullName)
			fmt.Fprintf(tw, "%s\t%s\n", str.Email, ap.Email)
			fmt.Fprintf(tw, "%s\t%s\n", str.Phone, ap.Phone)
			fmt.Fprintf(tw, "%s\t%s\n", str.EffectiveDate, ap.EffectiveDate)
			fmt.Fprintf(tw, "%s\t%s\n", str.OldAddress, ap.OldAddress.Line())
			fmt.Fprintf(tw, "%s\t%s\n", str.NewAddress, ap.NewAddress.Line())
			return tw.Flush()
		},
	}
	return cmd
}

func addressArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 2:
		return nil
	case 1:
		return fmt.Errorf("missing VALUE for %s", args[0])
	}
	return fmt.Errorf("accepts at most 2 arg(s), received %d", len(args))
}

func newProfileCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the shared organisation profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()
			s := env.session

			p := s.Profile()
			changed := false
			for flag, field := range map[string]*string{"org": &p.Org, "user": &p.User, "language": &p.Language, "logo": &p.Logo} {
				if cmd.Flags().Changed(flag) {
					*field, _ = cmd.Flags().GetString(flag)
					changed = true
				}
			}
			if changed {
				s.SetProfile(cmd.Context(), p)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "org\t%s\n", p.Org)
			fmt.Fprintf(tw, "user\t%s\n", p.User)
			fmt.Fprintf(tw, "language\t%s\n", p.Language)
			fmt.Fprintf(tw, "logo\t%s\n", p.Logo)
			return tw.Flush()
		},
	}
	cmd.Flags().String("org", "", "organisation name shown in reports")
	cmd.Flags().String("user", "", "user name")
	cmd.Flags().String("language", "", "profile language")
	cmd.Flags().String("logo", "", "logo reference")
	return cmd
}
