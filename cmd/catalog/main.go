package main

/*
 * Entry point. All the wiring lives in the cobra commands of this
 * package; the catalog packages below never import upwards.
 */

func main() {
	Execute()
}
