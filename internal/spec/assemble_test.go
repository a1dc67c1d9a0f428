package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleInjectsSystemCommands(t *testing.T) {
	t.Parallel()

	assembled := Assemble(&UserSpec{Prompt: "qi>"})

	require.Len(t, assembled.Cmd.SystemCmd, 3)
	assert.Equal(t, "quit cli", assembled.Cmd.SystemCmd[CmdQuit].Title)
	assert.Equal(t, "display help message", assembled.Cmd.SystemCmd[CmdHelp].Title)
	assert.Equal(t, "get/set/reset parameters", assembled.Cmd.SystemCmd[CmdParam].Title)

	// Absent sequences default to empty, not nil.
	assert.NotNil(t, assembled.Cmd.ParamCmd)
	assert.NotNil(t, assembled.Cmd.UserCmd)
	assert.Empty(t, assembled.Cmd.ParamCmd)
	assert.Empty(t, assembled.Cmd.UserCmd)
	assert.Equal(t, "qi>", assembled.Prompt)
}

func TestAssembleCopiesSystemMap(t *testing.T) {
	t.Parallel()

	a := Assemble(&UserSpec{Prompt: "a>"})
	b := Assemble(&UserSpec{Prompt: "b>"})

	entry := a.Cmd.SystemCmd[CmdQuit]
	entry.Title = "mutated"
	a.Cmd.SystemCmd[CmdQuit] = entry

	assert.Equal(t, "quit cli", b.Cmd.SystemCmd[CmdQuit].Title)
	assert.Equal(t, "quit cli", SystemCommands()[CmdQuit].Title)
}

func TestAsMapOmitsAbsentOptionals(t *testing.T) {
	t.Parallel()

	user := &UserSpec{Prompt: "qi>"}
	user.Cmd.ParamCmd = []ParamCommand{
		{
			Name: "feeds",
			Params: []ParamDefinition{
				// No option, title or usage: the raw view must not
				// invent empty values for them.
				{Name: "bare", Class: ClassInfo},
				{
					Name:   "full",
					Option: &Option{Type: "string", ShortFlag: "f", DefaultValue: "x"},
					Title:  "full param",
					Usage:  "use fully",
					Class:  ClassExec,
				},
			},
		},
	}

	raw := Assemble(user).AsMap()
	cmd := raw["cmd"].(map[string]any)
	paramCmd := cmd["param_cmd"].([]any)
	feeds := paramCmd[0].(map[string]any)

	_, hasTitle := feeds["title"]
	assert.False(t, hasTitle, "empty param command title must be omitted")

	params := feeds["params"].([]any)
	bare := params[0].(map[string]any)
	_, hasOption := bare["option"]
	_, hasUsage := bare["usage"]
	assert.False(t, hasOption)
	assert.False(t, hasUsage)

	full := params[1].(map[string]any)
	option := full["option"].(map[string]any)
	assert.Equal(t, "x", option["default_value"])
	assert.Equal(t, "exec", full["class"])
}

func TestSpecLookupHelpers(t *testing.T) {
	t.Parallel()

	user := &UserSpec{Prompt: "qi>"}
	user.Cmd.ParamCmd = []ParamCommand{{Name: "feeds"}}
	user.Cmd.UserCmd = []UserCommand{{Name: "markets", Title: "list markets", Class: ClassInfo}}
	s := Assemble(user)

	pc, ok := s.ParamCommand("feeds")
	require.True(t, ok)
	assert.Equal(t, "feeds", pc.Name)

	_, ok = s.ParamCommand("markets")
	assert.False(t, ok)

	uc, ok := s.UserCommand("markets")
	require.True(t, ok)
	assert.Equal(t, "list markets", uc.Title)
}
