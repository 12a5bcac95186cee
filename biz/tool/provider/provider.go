// Package provider aggregates the built-in tool providers. Importing it
// blank runs every provider's Register.
package provider

import (
	_ "github.com/odit-bit/bizclock/biz/tool/provider/clocktool"
	_ "github.com/odit-bit/bizclock/biz/tool/provider/hourstool"
)
