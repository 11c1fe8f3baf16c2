package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/rategame/internal/console"
	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/internal/source"
	"github.com/huangsam/rategame/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func textConfig() *contract.Config {
	return &contract.Config{
		CriteriaFile:   schema.DefaultCriteriaFile,
		CriteriaFormat: schema.ParquetSource,
		Output:         schema.TextOut,
		Width:          120,
		LogLevel:       contract.DefaultLogLevel,
	}
}

func mockSource(table schema.CriteriaTable, err error) *source.MockCriteriaStore {
	src := &source.MockCriteriaStore{}
	src.On("Location").Return("mock")
	src.On("Load", mock.Anything).Return(table, err)
	return src
}

func TestExecuteRate(t *testing.T) {
	ctx := context.Background()

	t.Run("scenario session", func(t *testing.T) {
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole("no", "10", "0", "0")

		err := ExecuteRate(ctx, textConfig(), src, p, zap.NewNop())
		require.NoError(t, err)
		src.AssertExpectations(t)

		text := out.String()
		assert.Contains(t, text, "Welcome to Rate That Game!")
		assert.Contains(t, text, "Criteria loaded successfully.")
		assert.Contains(t, text, "\tGameplay: \n\t\tControls\n\t\tStory\n")
		assert.Contains(t, text, "\tAudio: \n\t\tMusic\n")
		assert.Contains(t, text, "No additional criteria added.")
		assert.Contains(t, text, "Overall rating calculated: 1.00/20.0")

		// Stages appear in flow order.
		stages := []string{
			"Loading criteria...",
			"Organizing criteria...",
			"Organized Criteria:",
			"Would you like to add any additional criteria?",
			"Configuring ratings for each criterion...",
			"Calculating overall rating...",
			"Overall rating calculated:",
		}
		last := -1
		for _, stage := range stages {
			idx := strings.Index(text, stage)
			require.GreaterOrEqual(t, idx, 0, stage)
			assert.Greater(t, idx, last, stage)
			last = idx
		}
	})

	t.Run("added criterion is rated last", func(t *testing.T) {
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole(
			"yes", "Visuals", "Lighting", "done",
			"0", "0", "0", "10",
		)

		err := ExecuteRate(ctx, textConfig(), src, p, zap.NewNop())
		require.NoError(t, err)

		text := out.String()
		assert.Contains(t, text, "Added 'Lighting' to 'Visuals' category.")
		assert.Contains(t, text, "Overall rating calculated: 4.00/20.0")
	})

	t.Run("zero total weight", func(t *testing.T) {
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole("no", "0", "0", "0")
		observed, logs := observer.New(zapcore.WarnLevel)

		err := ExecuteRate(ctx, textConfig(), src, p, zap.New(observed))
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Total weight is 0. Cannot calculate rating.")
		assert.NotContains(t, out.String(), "Overall rating calculated")
		assert.Zero(t, logs.Len(), "zero total weight is a normal outcome at the default log level")
	})

	t.Run("zero total weight json", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.JSONOut
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole("no", "0", "0", "0")

		require.NoError(t, ExecuteRate(ctx, cfg, src, p, zap.NewNop()))
		assert.Contains(t, out.String(), "Total weight is 0. Cannot calculate rating.\n{")
		assert.Contains(t, out.String(), `"computed": false`)
	})

	t.Run("load failure", func(t *testing.T) {
		src := mockSource(nil, os.ErrNotExist)
		p, out := newScriptedConsole()

		err := ExecuteRate(ctx, textConfig(), src, p, zap.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoadCriteria)
		assert.ErrorIs(t, err, os.ErrNotExist)

		text := out.String()
		assert.Contains(t, text, "Error loading criteria: \n\t")
		assert.NotContains(t, text, "Criteria loaded successfully.")
		assert.NotContains(t, text, "Organizing criteria...")
	})

	t.Run("input closed mid session", func(t *testing.T) {
		src := mockSource(scenarioTable, nil)
		p, _ := newScriptedConsole("no", "5")

		err := ExecuteRate(ctx, textConfig(), src, p, zap.NewNop())
		assert.ErrorIs(t, err, console.ErrInputClosed)
		assert.False(t, errors.Is(err, ErrLoadCriteria))
	})

	t.Run("json output", func(t *testing.T) {
		cfg := textConfig()
		cfg.Output = schema.JSONOut
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole("no", "0", "0", "10")

		err := ExecuteRate(ctx, cfg, src, p, zap.NewNop())
		require.NoError(t, err)

		text := out.String()
		start := strings.LastIndex(text, "Calculating overall rating...\n")
		require.GreaterOrEqual(t, start, 0)
		payload := text[start+len("Calculating overall rating...\n"):]

		var result struct {
			Overall  float64 `json:"overall"`
			Computed bool    `json:"computed"`
			Verdict  string  `json:"verdict"`
		}
		require.NoError(t, json.Unmarshal([]byte(payload), &result))
		assert.True(t, result.Computed)
		assert.InDelta(t, 3.0, result.Overall, 1e-9)
		assert.Equal(t, string(schema.PoorVerdict), result.Verdict)
	})
}

func TestExecuteCriteriaList(t *testing.T) {
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		src := mockSource(scenarioTable, nil)
		p, out := newScriptedConsole()

		require.NoError(t, ExecuteCriteriaList(ctx, textConfig(), src, p, zap.NewNop()))
		assert.Contains(t, out.String(), "Controls")
		assert.Contains(t, out.String(), "2 categories, 3 criteria")
	})

	t.Run("failure", func(t *testing.T) {
		src := mockSource(nil, errors.New("boom"))
		p, _ := newScriptedConsole()

		err := ExecuteCriteriaList(ctx, textConfig(), src, p, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error loading criteria")
		assert.False(t, errors.Is(err, ErrLoadCriteria))
	})
}

func TestExecuteCriteriaInit(t *testing.T) {
	ctx := context.Background()

	t.Run("writes new file", func(t *testing.T) {
		cfg := textConfig()
		cfg.CriteriaFile = filepath.Join(t.TempDir(), "criteria.csv")

		dst := &source.MockCriteriaStore{}
		dst.On("Save", mock.Anything, scenarioTable).Return(nil)
		dst.On("Location").Return(cfg.CriteriaFile)
		p, out := newScriptedConsole()

		require.NoError(t, ExecuteCriteriaInit(ctx, cfg, dst, scenarioTable, p, zap.NewNop()))
		dst.AssertExpectations(t)
		assert.Contains(t, out.String(), "Wrote 3 criteria in 2 categories to "+cfg.CriteriaFile)
	})

	t.Run("refuses existing file", func(t *testing.T) {
		cfg := textConfig()
		cfg.CriteriaFile = filepath.Join(t.TempDir(), "criteria.csv")
		require.NoError(t, os.WriteFile(cfg.CriteriaFile, []byte("Category,Criterion\n"), 0o644))

		dst := &source.MockCriteriaStore{}
		p, _ := newScriptedConsole()

		err := ExecuteCriteriaInit(ctx, cfg, dst, scenarioTable, p, zap.NewNop())
		assert.ErrorIs(t, err, ErrCriteriaExists)
		dst.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("force overwrites", func(t *testing.T) {
		cfg := textConfig()
		cfg.Force = true
		cfg.CriteriaFile = filepath.Join(t.TempDir(), "criteria.csv")
		require.NoError(t, os.WriteFile(cfg.CriteriaFile, []byte("Category,Criterion\n"), 0o644))

		dst := source.NewCSVStore(cfg.CriteriaFile)
		p, _ := newScriptedConsole()

		require.NoError(t, ExecuteCriteriaInit(ctx, cfg, dst, scenarioTable, p, zap.NewNop()))

		table, err := dst.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, scenarioTable, table)
	})

	t.Run("save failure", func(t *testing.T) {
		cfg := textConfig()
		cfg.CriteriaFile = filepath.Join(t.TempDir(), "criteria.csv")

		dst := &source.MockCriteriaStore{}
		dst.On("Save", mock.Anything, scenarioTable).Return(errors.New("disk full"))
		p, out := newScriptedConsole()

		err := ExecuteCriteriaInit(ctx, cfg, dst, scenarioTable, p, zap.NewNop())
		assert.EqualError(t, err, "disk full")
		assert.Empty(t, out.String())
	})
}
