package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTristate_ZeroValueIsUnknown(t *testing.T) {
	var ts Tristate
	assert.False(t, ts.IsKnown())
	assert.False(t, ts.IsTrue())
	assert.Equal(t, "unknown", ts.String())
}

func TestTristate_Known(t *testing.T) {
	v, ok := Known(true).Value()
	assert.True(t, v)
	assert.True(t, ok)

	v, ok = Known(false).Value()
	assert.False(t, v)
	assert.True(t, ok)
	assert.NotEqual(t, TriUnknown, Known(false))
}

func TestTristate_JSON(t *testing.T) {
	type wrapper struct {
		A Tristate `json:"a"`
		B Tristate `json:"b"`
		C Tristate `json:"c"`
	}
	data, err := json.Marshal(wrapper{A: TriTrue, B: TriFalse, C: TriUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":true,"b":false,"c":null}`, string(data))

	var back wrapper
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, TriTrue, back.A)
	assert.Equal(t, TriFalse, back.B)
	assert.Equal(t, TriUnknown, back.C)
}
