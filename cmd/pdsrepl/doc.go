/*
Command pdsrepl is an interactive sandbox for persistent collections.

Every collection entered is bound to a name and never changes afterwards. Deriving a
new collection from an existing one binds a new name, leaving the source untouched:

	pds> l1 = list a b c
	pds> l2 = l1 add d
	pds> show l1
	pds> tree l2

Type 'help' for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pds.repl'
func tracer() tracing.Trace {
	return tracing.Select("pds.repl")
}
