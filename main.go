package main

import (
	"assetcreator/internal/catalog"
	"assetcreator/internal/cli"
	_ "assetcreator/internal/gamedata"
)

func main() {
	cli.Execute(catalog.Default)
}
