package plan

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDir_Idempotent(t *testing.T) {
	t.Parallel()

	p := New()
	added, err := p.AddDir(DirectorySpec{Path: "lib/core", Owner: OwnerSkeleton})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = p.AddDir(DirectorySpec{Path: "lib/core/", Owner: ModuleOwner("x"), NoClobber: true})
	require.NoError(t, err)
	assert.False(t, added)

	dirs := p.Dirs()
	require.Len(t, dirs, 1)
	assert.Equal(t, OwnerSkeleton, dirs[0].Owner, "first registration wins")
	assert.False(t, dirs[0].NoClobber)
}

func TestAddFile_SameContentIsNoop(t *testing.T) {
	t.Parallel()

	p := New()
	spec := FileSpec{
		Path:     "lib/main.dart",
		Owner:    OwnerSkeleton,
		Template: "base/lib/main.dart.tmpl",
		Data:     map[string]string{"a": "b"},
	}
	require.NoError(t, p.AddFile(spec))
	require.NoError(t, p.AddFile(spec))

	_, files := p.Len()
	assert.Equal(t, 1, files)
}

func TestAddFile_Collision(t *testing.T) {
	t.Parallel()

	p := New()
	require.NoError(t, p.AddFile(FileSpec{Path: "README.md", Owner: OwnerSkeleton, Content: []byte("one")}))

	err := p.AddFile(FileSpec{Path: "README.md", Owner: FeatureOwner("auth"), Content: []byte("two")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlanCollision))

	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "README.md", ce.Path)
	assert.Equal(t, OwnerSkeleton, ce.Existing)
	assert.Equal(t, "feature:auth", ce.Incoming)

	f, ok := p.File("README.md")
	require.True(t, ok)
	assert.Equal(t, []byte("one"), f.Content, "existing entry must not be overwritten")
}

func TestAddFile_DirectoryCollision(t *testing.T) {
	t.Parallel()

	p := New()
	_, err := p.AddDir(DirectorySpec{Path: "lib/core"})
	require.NoError(t, err)
	assert.ErrorIs(t, p.AddFile(FileSpec{Path: "lib/core", Content: []byte("x")}), ErrPlanCollision)
}

func TestCleanPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"lib/core", "lib/core", false},
		{"lib//core/./x", "lib/core/x", false},
		{"lib/../test", "test", false},
		{"", "", true},
		{"/etc/passwd", "", true},
		{"../outside", "", true},
		{"..", "", true},
		{".", "", true},
		{`lib\core`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := CleanPath(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingIsSorted(t *testing.T) {
	t.Parallel()

	p := New()
	for _, d := range []string{"test", "lib/features", "assets", "lib"} {
		_, err := p.AddDir(DirectorySpec{Path: d})
		require.NoError(t, err)
	}
	for _, f := range []string{"pubspec.yaml", "README.md", "lib/main.dart"} {
		require.NoError(t, p.AddFile(FileSpec{Path: f, Content: []byte(f)}))
	}

	assert.Equal(t, []string{"assets", "lib", "lib/features", "test"}, p.DirPaths())
	assert.Equal(t, []string{"README.md", "lib/main.dart", "pubspec.yaml"}, p.FilePaths())
}

func TestFilesReturnsCopies(t *testing.T) {
	t.Parallel()

	p := New()
	require.NoError(t, p.AddFile(FileSpec{Path: "a.dart", Template: "t", Data: map[string]string{"k": "v"}}))

	files := p.Files()
	files[0].Data["k"] = "mutated"

	f, _ := p.File("a.dart")
	assert.Equal(t, "v", f.Data["k"])
}

func TestVariables(t *testing.T) {
	t.Parallel()

	p := New()
	require.NoError(t, p.SetVariables(map[string]string{"project_name": "demo_app"}))
	require.NoError(t, p.SetVariables(map[string]string{"project_name": "demo_app", "x": "y"}))
	assert.ErrorIs(t, p.SetVariables(map[string]string{"x": "z"}), ErrPlanCollision)

	vars := p.Variables()
	vars["x"] = "changed"
	assert.Equal(t, "y", p.Variables()["x"])
}

func TestConcurrentInsertion(t *testing.T) {
	t.Parallel()

	p := New()
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				dir := fmt.Sprintf("lib/w%d/d%d", w, i)
				_, err := p.AddDir(DirectorySpec{Path: dir})
				assert.NoError(t, err)
				assert.NoError(t, p.AddFile(FileSpec{Path: dir + "/f.dart", Content: []byte(dir)}))
				// every worker also registers the same shared entries
				_, err = p.AddDir(DirectorySpec{Path: "lib/shared"})
				assert.NoError(t, err)
				assert.NoError(t, p.AddFile(FileSpec{Path: "lib/shared/x.dart", Content: []byte("x")}))
			}
		}()
	}
	wg.Wait()

	dirs, files := p.Len()
	assert.Equal(t, 8*50+1, dirs)
	assert.Equal(t, 8*50+1, files)
}
