package overrides

import (
	"testing"

	"github.com/buckos/patchd/internal/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePatches(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		extra    []string
		want     []string
	}{
		{"append in order", []string{"A", "B"}, []string{"C", "D"}, []string{"A", "B", "C", "D"}},
		{"no existing", nil, []string{"C"}, []string{"C"}},
		{"no extra", []string{"A"}, nil, []string{"A"}},
		{"both empty", nil, nil, nil},
		{"duplicates kept", []string{"A"}, []string{"A"}, []string{"A", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergePatches(tt.existing, tt.extra))
		})
	}
}

func TestMergePatchesDoesNotAlias(t *testing.T) {
	existing := make([]string, 2, 8)
	existing[0], existing[1] = "A", "B"

	out := mergePatches(existing, []string{"C"})
	out[0] = "changed"

	assert.Equal(t, "A", existing[0])
	assert.Equal(t, []string{"A", "B"}, existing)
}

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]string
		extra    map[string]string
		want     map[string]string
	}{
		{
			name:     "override wins",
			existing: map[string]string{"X": "1", "Y": "2"},
			extra:    map[string]string{"X": "9", "Z": "3"},
			want:     map[string]string{"X": "9", "Y": "2", "Z": "3"},
		},
		{
			name:  "no existing",
			extra: map[string]string{"Z": "3"},
			want:  map[string]string{"Z": "3"},
		},
		{
			name:     "no extra",
			existing: map[string]string{"X": "1"},
			want:     map[string]string{"X": "1"},
		},
		{
			name:     "empty value overrides",
			existing: map[string]string{"X": "1"},
			extra:    map[string]string{"X": ""},
			want:     map[string]string{"X": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeEnv(tt.existing, tt.extra))
		})
	}
}

func TestMergeEnvDoesNotMutate(t *testing.T) {
	existing := map[string]string{"X": "1"}
	out := mergeEnv(existing, map[string]string{"X": "9"})
	out["NEW"] = "x"

	assert.Equal(t, map[string]string{"X": "1"}, existing)
}

func TestMergePreConfigure(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		extra    *string
		want     string
	}{
		{"concatenate", "step1", ptr("step2"), "step1\nstep2"},
		{"existing empty", "", ptr("step2"), "step2"},
		{"absent", "step1", nil, "step1"},
		{"absent and empty", "", nil, ""},
		{"empty override", "step1", ptr(""), "step1"},
		{"multi-line", "a\nb", ptr("c\nd"), "a\nb\nc\nd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergePreConfigure(tt.existing, tt.extra))
		})
	}
}

func TestMergeSrcPrepare(t *testing.T) {
	tests := []struct {
		name        string
		existing    string
		replacement *string
		want        string
	}{
		{"replace", "old", ptr("new"), "new"},
		{"absent", "old", nil, "old"},
		{"replace empty existing", "", ptr("new"), "new"},
		{"clear", "old", ptr(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeSrcPrepare(tt.existing, tt.replacement))
		})
	}
}

func TestMergeConfigure(t *testing.T) {
	tests := []struct {
		name          string
		existing      string
		env           map[string]string
		extra         *string
		wantConfigure string
		wantEnv       map[string]string
	}{
		{
			name:          "append to configure",
			existing:      "--base",
			env:           map[string]string{"A": "1"},
			extra:         ptr("--with-x"),
			wantConfigure: "--base --with-x",
			wantEnv:       map[string]string{"A": "1"},
		},
		{
			name:          "fallback to EXTRA_ECONF",
			existing:      "",
			env:           nil,
			extra:         ptr("--with-x"),
			wantConfigure: "",
			wantEnv:       map[string]string{"EXTRA_ECONF": "--with-x"},
		},
		{
			name:          "append to EXTRA_ECONF",
			existing:      "",
			env:           map[string]string{"EXTRA_ECONF": "--foo", "B": "2"},
			extra:         ptr("--with-x"),
			wantConfigure: "",
			wantEnv:       map[string]string{"EXTRA_ECONF": "--foo --with-x", "B": "2"},
		},
		{
			name:          "empty EXTRA_ECONF",
			existing:      "",
			env:           map[string]string{"EXTRA_ECONF": ""},
			extra:         ptr("--with-x"),
			wantConfigure: "",
			wantEnv:       map[string]string{"EXTRA_ECONF": "--with-x"},
		},
		{
			name:          "absent",
			existing:      "",
			env:           map[string]string{"A": "1"},
			extra:         nil,
			wantConfigure: "",
			wantEnv:       map[string]string{"A": "1"},
		},
		{
			name:          "empty extra",
			existing:      "--base",
			env:           nil,
			extra:         ptr(""),
			wantConfigure: "--base",
			wantEnv:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configure, env := mergeConfigure(tt.existing, tt.env, tt.extra)
			assert.Equal(t, tt.wantConfigure, configure)
			assert.Equal(t, tt.wantEnv, env)
		})
	}
}

func TestMergeConfigureDoesNotMutateEnv(t *testing.T) {
	env := map[string]string{"EXTRA_ECONF": "--foo"}
	_, out := mergeConfigure("", env, ptr("--bar"))

	assert.Equal(t, "--foo", env["EXTRA_ECONF"])
	assert.Equal(t, "--foo --bar", out["EXTRA_ECONF"])
}

func sampleRecipe() recipe.Recipe {
	return recipe.Recipe{
		Patches:      []string{"A", "B"},
		Env:          map[string]string{"X": "1", "Y": "2"},
		SrcPrepare:   "old",
		PreConfigure: "step1",
		SrcConfigure: "--base",
	}
}

func TestMergeIdentity(t *testing.T) {
	recipes := []recipe.Recipe{
		{},
		sampleRecipe(),
		{Env: map[string]string{"EXTRA_ECONF": "--foo"}},
	}

	for _, r := range recipes {
		assert.Equal(t, r, Merge(r, nil))
		assert.Equal(t, r, Merge(r, &Record{}))
		assert.True(t, r.Equal(Merge(r, &Record{Patches: []string{}, Env: map[string]string{}})))
	}
}

func TestMergeFullRecord(t *testing.T) {
	r := sampleRecipe()
	o := &Record{
		Patches:            []string{"C", "D"},
		Env:                map[string]string{"X": "9", "Z": "3"},
		ExtraConfigureArgs: ptr("--with-x"),
		PreConfigure:       ptr("step2"),
		SrcPrepare:         ptr("new"),
	}

	got := Merge(r, o)

	want := recipe.Recipe{
		Patches:      []string{"A", "B", "C", "D"},
		Env:          map[string]string{"X": "9", "Y": "2", "Z": "3"},
		SrcPrepare:   "new",
		PreConfigure: "step1\nstep2",
		SrcConfigure: "--base --with-x",
	}
	assert.Equal(t, want, got)

	// Inputs are untouched.
	assert.Equal(t, sampleRecipe(), r)
	assert.Equal(t, []string{"C", "D"}, o.Patches)
	assert.Equal(t, map[string]string{"X": "9", "Z": "3"}, o.Env)
}

func TestMergeConfigureFallbackSeesMergedEnv(t *testing.T) {
	r := recipe.Recipe{Env: map[string]string{"EXTRA_ECONF": "--old"}}
	o := &Record{
		Env:                map[string]string{"EXTRA_ECONF": "--foo"},
		ExtraConfigureArgs: ptr("--with-x"),
	}

	got := Merge(r, o)
	assert.Equal(t, "", got.SrcConfigure)
	assert.Equal(t, map[string]string{"EXTRA_ECONF": "--foo --with-x"}, got.Env)
}

func TestMergeIsDeterministic(t *testing.T) {
	r := sampleRecipe()
	o := &Record{
		Patches:            []string{"C"},
		Env:                map[string]string{"K1": "a", "K2": "b", "K3": "c"},
		ExtraConfigureArgs: ptr("--x"),
	}

	first := Merge(r, o)
	for range 20 {
		got := Merge(r, o)
		require.Equal(t, first, got)
		require.Equal(t, first.Digest(), got.Digest())
	}
}

func TestMergeResultDoesNotAlias(t *testing.T) {
	r := sampleRecipe()

	got := Merge(r, nil)
	got.Patches[0] = "changed"
	got.Env["X"] = "changed"
	assert.Equal(t, sampleRecipe(), r)

	o := &Record{Patches: []string{"C"}, Env: map[string]string{"Z": "3"}}
	got = Merge(r, o)
	got.Patches[2] = "changed"
	got.Env["Z"] = "changed"
	assert.Equal(t, []string{"C"}, o.Patches)
	assert.Equal(t, "3", o.Env["Z"])
}
