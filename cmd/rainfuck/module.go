package main

import (
	"github.com/insomnimus/rainfuck/bfconfigs"
	"github.com/insomnimus/rainfuck/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	BfConfigs bfconfigs.Module
	Debugs    debugs.Module
}
