// Package all registers every database driver at once:
//
//	import _ "github.com/ncobase/monoapi/data/all"
//
// Binaries that only talk to one database can import that driver alone.
package all

import (
	_ "github.com/ncobase/monoapi/data/mysql"
	_ "github.com/ncobase/monoapi/data/postgres"
	_ "github.com/ncobase/monoapi/data/sqlite"
)
