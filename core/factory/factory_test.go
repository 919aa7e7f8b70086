package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A int `json:"a"`
}

type SampleFactory struct{}

func newSample(conf map[string]any) (*sample, error) {
	var c sampleConf
	if err := Decode(conf, &c); err != nil {
		return nil, err
	}
	return &sample{A: c.A}, nil
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.Register("s", newSample))
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.A)
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.ErrorIs(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }), ErrDuplicate)
	assert.Error(t, reg.Register("y", nil))
	assert.Error(t, reg.Register("", func(map[string]any) (int, error) { return 1, nil }))

	_, err := reg.Create(ModuleConfig{Type: "y"})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRegistry_RegisterTypeDerivesTag(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.RegisterType(&SampleFactory{}, newSample))
	require.NoError(t, reg.RegisterType(SampleFactory{}, newSample, "smp", "other"))
	assert.Equal(t, []string{"other", "sample", "smp"}, reg.Tags())

	e, err := reg.Lookup("smp")
	require.NoError(t, err)
	assert.Equal(t, "SampleFactory", e.TypeName)
	assert.Equal(t, "smp", e.Tag)

	assert.ErrorIs(t, reg.RegisterType(&SampleFactory{}, newSample), ErrDuplicate)
	assert.Error(t, reg.RegisterType(nil, newSample))
}

func TestRegistry_Seal(t *testing.T) {
	reg := NewRegistry[*sample]()
	reg.MustRegister("s", newSample)
	reg.Seal()
	assert.True(t, reg.Sealed())
	assert.ErrorIs(t, reg.Register("t", newSample), ErrSealed)

	_, err := reg.Lookup("s")
	assert.NoError(t, err)
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry[*sample]()
	reg.MustRegisterType(&SampleFactory{}, newSample)
	assert.Panics(t, func() { reg.MustRegisterType(&SampleFactory{}, newSample) })
	assert.Panics(t, func() { reg.MustRegister("sample", newSample) })
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	var c sampleConf
	assert.Error(t, Decode(map[string]any{"b": 1}, &c))
	require.NoError(t, Decode(map[string]any{"a": "4"}, &c))
	assert.Equal(t, 4, c.A)
}

func TestTagFor(t *testing.T) {
	cases := map[string]string{
		"DMLFactory":         "dml",
		"DRFactory":          "dr",
		"MetaLeanerFactory":  "meta_leaner",
		"CausalTreeFactory":  "causal_tree",
		"ApproxBoundFactory": "approx_bound",
		"IVFactory":          "iv",
		"DeepIVFactory":      "deep_iv",
		"Plain":              "plain",
		"HTTPServerFactory":  "http_server",
	}
	for in, want := range cases {
		assert.Equal(t, want, TagFor(in), in)
	}
}
