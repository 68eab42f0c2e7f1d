package entities

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reglet-dev/launchkit/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listTokens returns the semicolon separated items of the line starting with key=.
func listTokens(t *testing.T, rendered, key string) []string {
	t.Helper()
	for _, line := range strings.Split(rendered, "\n") {
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			require.True(t, strings.HasSuffix(value, ";"), "list %s must end with ';'", key)
			return strings.Split(strings.TrimSuffix(value, ";"), ";")
		}
	}
	t.Fatalf("no %s line in:\n%s", key, rendered)
	return nil
}

func TestRender_Minimal(t *testing.T) {
	got := newTestBuilder(t).Build().Render()

	want := "[Desktop Entry]\n" +
		"Type=Application\n" +
		"Name=My App\n" +
		"Exec=/usr/bin/myapp\n" +
		"Terminal=false\n" +
		"NoDisplay=false\n" +
		"StartupNotify=false\n"
	assert.Equal(t, want, got)
}

func TestRender_FullEntry(t *testing.T) {
	b, err := NewBuilder("mailer", values.EntryTypeApplication, "Mailer", "/opt/mailer/bin/mailer %u")
	require.NoError(t, err)

	b.Icon("mailer").
		Comment("Read mail").
		AddCategory(values.CategoryNetwork).
		Path("/opt/mailer").
		AddKeyword("mail").
		TryExec("/opt/mailer/bin/mailer").
		Terminal(true).
		GenericName("Mail Client").
		NoDisplay(true).
		AddOnlyShowIn(values.DesktopXFCE).
		StartupNotify(true).
		StartupWMClass("Mailer")
	require.NoError(t, b.AddNameLang("de", "Post"))
	require.NoError(t, b.AddCommentLang("de", "Post lesen"))
	require.NoError(t, b.AddGenericNameLang("de", "Postprogramm"))
	require.NoError(t, b.AddMimeType("message/rfc822"))

	want := "[Desktop Entry]\n" +
		"Type=Application\n" +
		"Name=Mailer\n" +
		"Name[de]=Post\n" +
		"Exec=/opt/mailer/bin/mailer %u\n" +
		"Icon=mailer\n" +
		"Comment=Read mail\n" +
		"Comment[de]=Post lesen\n" +
		"Categories=Network;\n" +
		"Path=/opt/mailer\n" +
		"Keywords=mail;\n" +
		"TryExec=/opt/mailer/bin/mailer\n" +
		"Terminal=true\n" +
		"GenericName=Mail Client\n" +
		"GenericName[de]=Postprogramm\n" +
		"\n" +
		"NoDisplay=true\n" +
		"OnlyShowIn=XFCE;\n" +
		"MimeType=message/rfc822;\n" +
		"StartupNotify=true\n" +
		"StartupWMClass=Mailer\n"
	assert.Equal(t, want, b.Build().Render())
}

func TestRender_GenericNameWithoutLocalizationHasNoBlankLine(t *testing.T) {
	got := newTestBuilder(t).GenericName("Tool").Build().Render()

	assert.Contains(t, got, "Terminal=false\nGenericName=Tool\nNoDisplay=false\n")
	assert.NotContains(t, got, "\n\n")
}

func TestRender_LocalizedCommentWithoutBaseComment(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.AddCommentLang("it", "Commento"))

	got := b.Build().Render()

	assert.Contains(t, got, "Exec=/usr/bin/myapp\nComment[it]=Commento\nTerminal=false\n")
	assert.NotContains(t, got, "Comment=")
}

func TestRender_CategoriesAsSet(t *testing.T) {
	got := newTestBuilder(t).
		AddCategory(values.CategoryNetwork).
		AddCategory(values.CategoryEmail).
		Build().Render()

	assert.ElementsMatch(t, []string{"Network", "Email"}, listTokens(t, got, "Categories"))
}

func TestRender_MultiValuedKeys(t *testing.T) {
	b := newTestBuilder(t).
		AddKeywords("a", "b", "c").
		AddNotShowIn(values.DesktopKDE).
		AddNotShowIn(values.DesktopLXQt)
	require.NoError(t, b.AddMimeType("text/plain"))
	require.NoError(t, b.AddMimeType("text/markdown"))

	got := b.Build().Render()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, listTokens(t, got, "Keywords"))
	assert.ElementsMatch(t, []string{"KDE", "LXQt"}, listTokens(t, got, "NotShowIn"))
	assert.ElementsMatch(t, []string{"text/plain", "text/markdown"}, listTokens(t, got, "MimeType"))
	assert.NotContains(t, got, "OnlyShowIn=")
}

func TestRender_LocalizedNamesAsSet(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.AddNameLang("fr", "Mon App"))
	require.NoError(t, b.AddNameLang("de", "Mein App"))
	require.NoError(t, b.AddNameLang("nds", "Mien App"))

	lines := strings.Split(b.Build().Render(), "\n")

	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Name=My App", lines[2])
	assert.ElementsMatch(t,
		[]string{"Name[fr]=Mon App", "Name[de]=Mein App", "Name[nds]=Mien App"},
		lines[3:6])
	assert.Equal(t, "Exec=/usr/bin/myapp", lines[6])
}

func TestRender_Idempotent(t *testing.T) {
	b := newTestBuilder(t).AddKeywords("x", "y", "z").AddCategory(values.CategoryGame)
	require.NoError(t, b.AddNameLang("de", "a"))
	require.NoError(t, b.AddNameLang("fr", "b"))
	require.NoError(t, b.AddNameLang("es", "c"))
	entry := b.Build()

	assert.Equal(t, entry.Render(), entry.Render())
}

func TestRender_RequiredFieldsVerbatim(t *testing.T) {
	b, err := NewBuilder("foo", values.EntryTypeDirectory, "Foo = Bar", "/usr/bin/foo --flag=1")
	require.NoError(t, err)

	got := b.Build().Render()

	assert.Contains(t, got, "\nType=Directory\n")
	assert.Contains(t, got, "\nName=Foo = Bar\n")
	assert.Contains(t, got, "\nExec=/usr/bin/foo --flag=1\n")
}

func TestRender_UsesLinuxLineSeparator(t *testing.T) {
	got := newTestBuilder(t).Build().Render()

	assert.NotContains(t, got, "\r")
	assert.True(t, strings.HasSuffix(got, "\n"))
}

func TestDesktopEntry_WriteTo(t *testing.T) {
	entry := newTestBuilder(t).Icon("myapp").Build()
	var buf bytes.Buffer

	n, err := entry.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, entry.Render(), buf.String())
}
