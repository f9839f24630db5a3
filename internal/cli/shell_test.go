package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookscollector/internal/collector"
)

func newTestShell() (*Shell, *collector.BooksCollector, *bytes.Buffer) {
	c := collector.NewBooksCollector(collector.Options{})
	out := &bytes.Buffer{}
	return NewShell(c, out), c, out
}

func run(t *testing.T, s *Shell, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := s.Execute(line)
		require.NoError(t, err, line)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`add Книга`, []string{"add", "Книга"}},
		{`add "Книга 1"`, []string{"add", "Книга 1"}},
		{`genre  "Книга 1"   Комедии`, []string{"genre", "Книга 1", "Комедии"}},
		{`add "say \"hi\""`, []string{"add", `say "hi"`}},
		{`add ""`, []string{"add", ""}},
		{"add\tКнига", []string{"add", "Книга"}},
		{`add foo\`, []string{"add", `foo\`}},
		{`add \`, []string{"add", `\`}},
		{`add "a\\b"`, []string{"add", `a\b`}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := splitArgs(`add "Книга 1`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestShell_BookLifecycle(t *testing.T) {
	s, c, out := newTestShell()

	run(t, s,
		`add "Книга 1"`,
		`genre "Книга 1" Фантастика`,
		`fav "Книга 1"`,
	)

	genre, _ := c.GetBookGenre("Книга 1")
	assert.Equal(t, "Фантастика", genre)
	assert.Equal(t, []string{"Книга 1"}, c.GetListOfFavoritesBooks())
	assert.Contains(t, out.String(), `Added "Книга 1"`)
	assert.Contains(t, out.String(), `"Книга 1" is now Фантастика`)

	out.Reset()
	run(t, s, `unfav "Книга 1"`, "favorites")
	assert.Empty(t, c.GetListOfFavoritesBooks())
	assert.Contains(t, out.String(), "(empty)")
}

func TestShell_ReportsIgnoredOperations(t *testing.T) {
	s, c, out := newTestShell()

	run(t, s,
		`add ""`,
		`add Книга`,
		`add Книга`,
		`genre Книга Романы`,
		`genre Нет Комедии`,
		`get Нет`,
		`get Книга`,
		`fav Нет`,
		`unfav Книга`,
	)

	assert.Equal(t, 1, c.Len())
	text := out.String()
	assert.Contains(t, text, "Title must be 1-40 characters")
	assert.Contains(t, text, `"Книга" is already in the catalog`)
	assert.Contains(t, text, `Unknown genre "Романы"`)
	assert.Contains(t, text, `"Нет" is not in the catalog`)
	assert.Contains(t, text, `"Книга" has no genre`)
	assert.Contains(t, text, `"Книга" is not a favorite`)
}

func TestShell_Listings(t *testing.T) {
	s, _, out := newTestShell()

	run(t, s,
		`add Дюна`,
		`add Оно`,
		`add Пусто`,
		`genre Дюна Фантастика`,
		`genre Оно Ужасы`,
		`fav Дюна`,
	)

	out.Reset()
	run(t, s, "children")
	assert.Equal(t, "1. Дюна\n2. Пусто\n", out.String())

	out.Reset()
	run(t, s, "by-genre Ужасы")
	assert.Equal(t, "1. Оно\n", out.String())

	out.Reset()
	run(t, s, "all")
	assert.Equal(t, "1. Дюна [Фантастика] ★\n2. Оно [Ужасы]\n3. Пусто [no genre]\n", out.String())

	out.Reset()
	run(t, s, "genres")
	assert.Contains(t, out.String(), "Ужасы (age-restricted)\n")
	assert.Contains(t, out.String(), "Комедии\n")
}

func TestShell_TrailingBackslashKept(t *testing.T) {
	s, c, _ := newTestShell()

	run(t, s, `add Книга\`)

	_, ok := c.GetBookGenre(`Книга\`)
	assert.True(t, ok)
}

func TestShell_Errors(t *testing.T) {
	s, _, _ := newTestShell()

	_, err := s.Execute("shelve Книга")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = s.Execute("add Книга 1")
	assert.ErrorIs(t, err, ErrWrongArgCount)

	_, err = s.Execute(`add "Книга`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestShell_QuitAndComments(t *testing.T) {
	s, _, out := newTestShell()

	quit, err := s.Execute("   ")
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = s.Execute("# comment")
	require.NoError(t, err)
	assert.False(t, quit)

	quit, err = s.Execute("quit")
	require.NoError(t, err)
	assert.True(t, quit)

	quit, err = s.Execute("exit")
	require.NoError(t, err)
	assert.True(t, quit)

	assert.Empty(t, out.String())
}

func TestShell_Help(t *testing.T) {
	s, _, out := newTestShell()

	run(t, s, "help")

	assert.Contains(t, out.String(), "genre <title> <genre>")
	assert.Contains(t, out.String(), "quit")
}
