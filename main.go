package main

import environhelper "github.com/environhelper/environhelper/cmd/environhelper"

func main() {
	environhelper.Execute()
}
