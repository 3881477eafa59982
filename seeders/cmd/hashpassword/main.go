package main

import (
	"flag"
	"fmt"
	"log"

	"gym-maintenance/pkg/utils"
)

// Prints the bcrypt hash stored as password_hash in fixture files.
func main() {
	password := flag.String("password", "", "Senha a ser convertida em hash")
	flag.Parse()

	if *password == "" {
		log.Println("Informe a senha: go run ./seeders/cmd/hashpassword -password <senha>")
		return
	}

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("erro ao gerar o hash: %v", err)
	}
	fmt.Println(hashed)
}
