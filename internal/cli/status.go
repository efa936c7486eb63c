package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toolstack/addressit/internal/app"
	"github.com/toolstack/addressit/internal/metrics"
)

type statusJSON struct {
	Lang               string          `json:"lang"`
	Country            string          `json:"country"`
	Total              int             `json:"total"`
	Done               int             `json:"done"`
	Remaining          int             `json:"remaining"`
	ProgressPct        int             `json:"progressPct"`
	DueSoon            int             `json:"dueSoon"`
	Overdue            int             `json:"overdue"`
	SuggestedRemaining int             `json:"suggestedRemaining"`
	MissingRecommended int             `json:"missingRecommended"`
	Sections           []sectionStatus `json:"sections"`
}

type sectionStatus struct {
	ID    string `json:"id"`
	Key   string `json:"key,omitempty"`
	Name  string `json:"name"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

func newStatusCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show checklist progress and per-section counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()

			st := buildStatus(env.session)
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			writeStatus(cmd.OutOrStdout(), env.session, st)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print status as JSON")
	return cmd
}

func buildStatus(s *app.Session) statusJSON {
	state := s.State()
	m := s.Metrics()
	out := statusJSON{
		Lang:               string(state.Lang),
		Country:            string(state.Country),
		Total:              m.Total,
		Done:               m.Done,
		Remaining:          m.Remaining,
		ProgressPct:        m.ProgressPct,
		DueSoon:            m.DueSoon,
		Overdue:            m.Overdue,
		SuggestedRemaining: m.SuggestedRemaining,
		MissingRecommended: m.MissingRecommendedCount,
		Sections:           make([]sectionStatus, 0, len(state.Sections)),
	}
	for _, sec := range state.Sections {
		done := 0
		for _, it := range sec.Items {
			if it.Done {
				done++
			}
		}
		out.Sections = append(out.Sections, sectionStatus{
			ID:    sec.ID,
			Key:   sec.PresetKey(),
			Name:  sec.Name,
			Done:  done,
			Total: len(sec.Items),
		})
	}
	return out
}

func writeStatus(w io.Writer, s *app.Session, st statusJSON) {
	str := s.Strings()
	fmt.Fprintf(w, "%s (%s, %s)\n", str.AppName, st.Lang, str.CountryName(s.State().Country))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d%%\n", str.Progress, st.ProgressPct)
	fmt.Fprintf(tw, "%s\t%d\n", str.Total, st.Total)
	fmt.Fprintf(tw, "%s\t%d\n", str.Done, st.Done)
	fmt.Fprintf(tw, "%s\t%d\n", str.Remaining, st.Remaining)
	fmt.Fprintf(tw, "%s\t%d (≤%dd)\n", str.DueSoon, st.DueSoon, metrics.DueSoonDays)
	fmt.Fprintf(tw, "%s\t%d\n", str.Overdue, st.Overdue)
	fmt.Fprintf(tw, "%s\t%d\n", str.MissingRec, st.MissingRecommended)
	fmt.Fprintf(tw, "%s\t%d\n", str.SuggestedOpen, st.SuggestedRemaining)
	_ = tw.Flush()

	if len(st.Sections) == 0 {
		fmt.Fprintln(w, str.Empty)
		return
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, sec := range st.Sections {
		fmt.Fprintf(tw, "%s\t%d/%d\t%s\n", sec.Name, sec.Done, sec.Total, sec.ID)
	}
	_ = tw.Flush()
}

func newPresetsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List preset sections for the current language and country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer env.Close()

			str := env.session.Strings()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, st := range env.session.PresetStatus() {
				mark := " "
				if st.Added {
					mark = "✓"
				}
				rec := ""
				if st.Preset.Recommended {
					rec = str.Recommended
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, st.Preset.Key, st.Preset.Name, rec, st.Preset.Preview(3))
			}
			return tw.Flush()
		},
	}
}
