package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/starshine-sys/vigil/cmd"
	"github.com/starshine-sys/vigil/common"
)

func main() {
	common.InitLog()

	if err := cmd.Run(); err != nil {
		common.Log.Fatalf("%v", err)
	}
}
