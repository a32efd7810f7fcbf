package script

import (
	"fmt"

	"github.com/sirupsen/logrus"
	lua "github.com/yuin/gopher-lua"
)

// LuaRunner implements executor.ScriptRunner by running Lua files in
// an embedded interpreter.
type LuaRunner struct {
	log *logrus.Entry
}

// NewLuaRunner creates a Lua script runner.
func NewLuaRunner() *LuaRunner {
	return &LuaRunner{
		log: logrus.WithField("component", "lua-runner"),
	}
}

// Run executes the Lua file at path. Args are exposed to the script as
// the global string table "arg" (arg[1] .. arg[n]). The call blocks
// until the script returns; a script error propagates to the caller.
func (r *LuaRunner) Run(path string, args []string) error {
	L := lua.NewState()
	defer L.Close()

	argTable := L.NewTable()
	for _, a := range args {
		argTable.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argTable)

	r.log.WithField("script", path).Debug("running lua script")
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("script: run %s: %w", path, err)
	}
	return nil
}
