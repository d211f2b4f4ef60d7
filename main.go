package main

import "github.com/jiankeliu5/hardware-bitcoin-wallet/cmd"

func main() {
	cmd.Execute()
}
