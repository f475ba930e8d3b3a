package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalReportYAML(t *testing.T) {
	report := contextReport{
		Outcome: "success",
		Dialect: "openapi",
		Title:   "Petstore",
	}

	out, err := marshalReport(report, "yaml")
	require.NoError(t, err)

	var decoded contextReport
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, report, decoded)
}

func TestMarshalReportJSON(t *testing.T) {
	report := contextReport{
		Outcome: "parsed-with-errors",
		Violations: []violationReport{
			{Description: "attribute info.title is missing", Pointer: "/info"},
		},
	}

	out, err := marshalReport(report, "json")
	require.NoError(t, err)

	var decoded contextReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, report, decoded)
}

func TestMarshalReportUnknownFormat(t *testing.T) {
	_, err := marshalReport(contextReport{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSetupContextFlags(t *testing.T) {
	fs, flags := setupContextFlags()
	require.NoError(t, fs.Parse([]string{"--format", "json", "spec.yaml"}))
	assert.Equal(t, "json", flags.format)
	assert.Equal(t, 1, fs.NArg())
}

func TestSetupSuppressedFlags(t *testing.T) {
	fs, flags := setupSuppressedFlags()
	require.NoError(t, fs.Parse([]string{"--pointer", "/info", "spec.yaml", "104"}))
	assert.Equal(t, "/info", flags.pointer)
	assert.Equal(t, 2, fs.NArg())
}
