package main

import (
	"fmt"

	"skill-swap/internal/domain/learning"
	"skill-swap/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagTopN int

var recommendCmd = &cobra.Command{
	Use:   "recommend <user-id>",
	Short: "Rank exchange partners for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

var demandCmd = &cobra.Command{
	Use:   "demand",
	Short: "Count how many users want each skill",
	Args:  cobra.NoArgs,
	RunE:  runDemand,
}

var swapCmd = &cobra.Command{
	Use:   "swap <user-a> <user-b>",
	Short: "Estimate the success probability of a swap between two users",
	Args:  cobra.ExactArgs(2),
	RunE:  runSwap,
}

func init() {
	recommendCmd.Flags().IntVarP(&flagTopN, "top-n", "n", 10, "Maximum number of recommendations")
	rootCmd.AddCommand(recommendCmd, demandCmd, swapCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	entries, err := matching.Recommend(id, snap.Users, flagTopN)
	if err != nil {
		return err
	}

	out := make([]recommendationView, 0, len(entries))
	for _, e := range entries {
		out = append(out, recommendationView{
			UserID:          e.UserID.String(),
			Name:            e.Name,
			SimilarityScore: e.SimilarityScore,
			Skills:          e.Skills,
			Location:        e.Location,
		})
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}

func runDemand(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	demand, err := matching.Demand(snap.Users)
	if err != nil {
		return err
	}
	out := make([]demandView, 0, len(demand))
	for _, d := range demand {
		out = append(out, demandView{Skill: d.Skill, Count: d.Count})
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, out)
}

func runSwap(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshotFlag()
	if err != nil {
		return err
	}
	a, err := snap.profile(args[0])
	if err != nil {
		return err
	}
	b, err := snap.profile(args[1])
	if err != nil {
		return err
	}
	if a.ID == b.ID {
		return fmt.Errorf("swap needs two different users")
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, swapView{
		UserA:       a.ID.String(),
		UserB:       b.ID.String(),
		Probability: learning.SwapSuccessProbability(a, b),
	})
}
