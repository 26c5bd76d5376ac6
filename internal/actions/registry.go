package actions

import "reflect"

// actionRegistry maps YAML action names to their concrete Go types.
// Names are matched lowercase.
//
// To add a new action:
// 1. Create a struct that implements the ActionStep interface (Validate & Build methods)
// 2. Add it to this registry with the name that will be used in YAML files
var actionRegistry = map[string]reflect.Type{
	"click":        reflect.TypeOf(Click{}),
	"deploy":       reflect.TypeOf(Deploy{}),
	"sleep":        reflect.TypeOf(Sleep{}),
	"repeat":       reflect.TypeOf(Repeat{}),
	"collect_loot": reflect.TypeOf(CollectLoot{}),
	"swipe":        reflect.TypeOf(Swipe{}),
}
