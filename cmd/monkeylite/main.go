/*
File    : monkeylite/cmd/monkeylite/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

func main() {
	Execute()
}
