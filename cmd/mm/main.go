package main

import "github.com/ProtoSG/momentum-front/cmd/mm/root"

func main() {
	root.Execute()
}
