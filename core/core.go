// Package core has core logic for loading criteria, editing them and rating a game.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/internal/outwriter"
	"github.com/huangsam/rategame/schema"
	"go.uber.org/zap"
)

// ErrLoadCriteria marks a criteria load failure that was already reported on the console.
var ErrLoadCriteria = errors.New("cannot load criteria")

// ErrCriteriaExists is returned by ExecuteCriteriaInit when the target would be overwritten.
var ErrCriteriaExists = errors.New("criteria file already exists")

// ExecuteRate runs the interactive session: load the criteria, organize and
// show them, offer to add more, collect a rating per criterion and print the
// overall rating. It serves as the main entry point for the root command.
func ExecuteRate(ctx context.Context, cfg *contract.Config, src contract.CriteriaSource, p contract.Prompter, logger *zap.Logger) error {
	ow := outwriter.NewOutWriter(cfg)

	p.Say("\nWelcome to Rate That Game!")

	p.Say("\nLoading criteria...")
	table, err := LoadCriteria(ctx, src, logger)
	if err != nil {
		p.Sayf("Error loading criteria: \n\t%v\n", err)
		return fmt.Errorf("%w: %w", ErrLoadCriteria, err)
	}
	p.Say("Criteria loaded successfully.")

	p.Say("Organizing criteria...")
	index := SplitCriteria(table)
	p.Say("Criteria split into categories successfully.")

	if err := ow.WriteOrganized(p.Out(), index); err != nil {
		return err
	}

	index, err = PromptAdditionalCriteria(p, index)
	if err != nil {
		return err
	}
	logger.Debug("criteria ready", zap.Int("categories", index.Len()), zap.Int("criteria", index.CriteriaCount()))

	weights, err := ConfigureWeights(p, index)
	if err != nil {
		return err
	}

	p.Say("Calculating overall rating...")
	result := CalculateRating(weights)
	if !result.Computed {
		logger.Info("total weight is zero", zap.Int("criteria", weights.Len()))
	} else if result.Overall > schema.MaxRating {
		logger.Warn("rating exceeds nominal maximum", zap.Float64("overall", result.Overall), zap.Int("criteria", weights.Len()))
	}
	return ow.WriteRating(p.Out(), result)
}

// ExecuteCriteriaList loads and organizes the criteria and prints them without
// starting an interactive session.
func ExecuteCriteriaList(ctx context.Context, cfg *contract.Config, src contract.CriteriaSource, p contract.Prompter, logger *zap.Logger) error {
	table, err := LoadCriteria(ctx, src, logger)
	if err != nil {
		return fmt.Errorf("error loading criteria: %w", err)
	}
	return outwriter.NewOutWriter(cfg).WriteCriteria(p.Out(), SplitCriteria(table))
}

// ExecuteCriteriaInit writes the built-in criteria table to dst. An existing
// file is only replaced when cfg.Force is set.
func ExecuteCriteriaInit(ctx context.Context, cfg *contract.Config, dst contract.CriteriaStore, seed schema.CriteriaTable, p contract.Prompter, logger *zap.Logger) error {
	if _, err := os.Stat(cfg.CriteriaFile); err == nil && !cfg.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrCriteriaExists, cfg.CriteriaFile)
	}

	if err := dst.Save(ctx, seed); err != nil {
		return err
	}
	logger.Info("criteria written", zap.String("location", dst.Location()), zap.Int("rows", seed.Len()))

	index := SplitCriteria(seed)
	p.Sayf("Wrote %d criteria in %d categories to %s\n", index.CriteriaCount(), index.Len(), dst.Location())
	return nil
}
