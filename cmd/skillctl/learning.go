package main

import (
	"skill-swap/internal/domain/learning"
	"skill-swap/internal/domain/user"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <skill>...",
	Short: "Recommend what to learn next from a list of known skills",
	Args:  cobra.ArbitraryArgs,
	RunE:  runPath,
}

var gapsCmd = &cobra.Command{
	Use:   "gaps <skill>...",
	Short: "List in-demand skills missing from a list of known skills",
	Args:  cobra.ArbitraryArgs,
	RunE:  runGaps,
}

func init() {
	rootCmd.AddCommand(pathCmd, gapsCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	recs, err := learning.RecommendPath(args)
	if err != nil {
		return err
	}
	out := make([]pathView, 0, len(recs))
	for _, r := range recs {
		v := pathView{Skill: r.Skill, Difficulty: string(r.Difficulty), Reason: r.Reason}
		if r.Prerequisite != "" {
			p := r.Prerequisite
			v.Prerequisite = &p
		}
		out = append(out, v)
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}

func runGaps(cmd *cobra.Command, args []string) error {
	if err := user.ValidateSkills("skills", args); err != nil {
		return err
	}
	gaps := learning.SkillGaps(args, nil)
	if gaps == nil {
		gaps = []string{}
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, gaps)
}
