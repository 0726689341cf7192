package main

import (
	"strings"

	"skill-swap/internal/search"

	"github.com/spf13/cobra"
)

var (
	flagSearchThreshold int
	flagSuggestLimit    int
	flagUsersThreshold  int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search the skill catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Autocomplete a skill name from the catalog",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSuggest,
}

var usersBySkillCmd = &cobra.Command{
	Use:   "users-by-skill <query>",
	Short: "Find users holding a skill close to the query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUsersBySkill,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchThreshold, "threshold", "t", search.DefaultThreshold, "Minimum confidence (0-100), exclusive")
	suggestCmd.Flags().IntVarP(&flagSuggestLimit, "limit", "l", search.DefaultSuggestLimit, "Maximum number of suggestions")
	usersBySkillCmd.Flags().IntVarP(&flagUsersThreshold, "threshold", "t", search.DefaultThreshold, "Minimum confidence (0-100), exclusive")
	rootCmd.AddCommand(searchCmd, suggestCmd, usersBySkillCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	matches, err := search.FuzzySearch(strings.Join(args, " "), snap.Catalog, flagSearchThreshold)
	if err != nil {
		return err
	}
	out := make([]matchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchView{Skill: m.Skill, Confidence: m.Confidence, Category: string(m.Category)})
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	suggestions, err := search.Suggest(strings.Join(args, " "), snap.Catalog, flagSuggestLimit)
	if err != nil {
		return err
	}
	out := make([]suggestionView, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionView{Skill: s.Skill, MatchType: string(s.MatchType), Category: string(s.Category)})
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}

func runUsersBySkill(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	matches, err := search.UsersBySkill(strings.Join(args, " "), snap.Users, flagUsersThreshold)
	if err != nil {
		return err
	}
	out := make([]userMatchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, userMatchView{
			UserID:       m.User.ID.String(),
			Name:         m.User.Name,
			MatchedSkill: m.MatchedSkill,
			Confidence:   m.Confidence,
		})
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}
