package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toolstack/addressit/internal/model"
)

func newSetupCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "setup",
		Aliases: []string{"wizard"},
		Short:   "Run the setup wizard without the UI",
		Long: `Pick a country and preset sections in one go. Sections already in the
checklist and keys that are not offered for the country are skipped.`,
		Example: "  addressit setup --country DE --sections gov,bank,wohn\n  addressit setup --country WORLD --recommended",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()
			s := env.session

			country, _ := cmd.Flags().GetString("country")
			keys, _ := cmd.Flags().GetStringSlice("sections")
			recommended, _ := cmd.Flags().GetBool("recommended")

			s.OpenWizard()
			if country != "" {
				c := model.Country(strings.ToUpper(country))
				if !c.IsValid() {
					s.CloseWizard()
					return fmt.Errorf("unknown country %q (use DE or WORLD)", country)
				}
				if _, err := s.UpdateWizard(func(w model.Wizard) model.Wizard { return w.WithCountry(c) }); err != nil {
					return err
				}
			}
			if _, err := s.UpdateWizard(model.Wizard.Next); err != nil {
				return err
			}

			if recommended {
				for _, p := range s.WizardPresets() {
					if p.Recommended {
						keys = append(keys, p.Key)
					}
				}
			}
			for _, key := range keys {
				key = strings.ToLower(strings.TrimSpace(key))
				if key == "" {
					continue
				}
				_, err := s.UpdateWizard(func(w model.Wizard) model.Wizard {
					if w.IsSelected(key) {
						return w
					}
					return w.Toggle(key)
				})
				if err != nil {
					return err
				}
			}

			added, err := s.FinishWizard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (+%d)\n", s.Strings().SetupApplied, added)
			return nil
		},
	}
	cmd.Flags().String("country", "", "DE or WORLD (default: keep current)")
	cmd.Flags().StringSlice("sections", nil, "preset keys to add, comma separated")
	cmd.Flags().Bool("recommended", false, "add every recommended preset")
	return cmd
}
