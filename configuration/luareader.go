package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/g-m-twostay/go-wbtree/fault"
)

// ParseConfigurationFile - run the Lua chunk in fileName and map the table
// it returns onto config, using the "gluamapper" field tags. The chunk sees
// the file name as arg[0].
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()
	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	// an empty chunk leaves nothing on the stack, L.Get then yields LNil
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigNotTable
	}
	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	}}
	return mapper.Map(table, config)
}
