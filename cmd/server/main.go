package main

import "washadmin/internal/app/server"

func main() {
	server.Run()
}
