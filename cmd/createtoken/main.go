package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/syduc993/hr-management-system-sub000/security"
)

func main() {
	name := flag.String("name", "dev-client", "service name embedded in the token")
	deviceID := flag.String("device", "dev-01", "device id embedded in the token")
	expires := flag.Int64("expires", 3600, "token lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("HR_SIGNING_SECRET")
	if secret == "" {
		fmt.Println("Error: HR_SIGNING_SECRET is required")
		os.Exit(1)
	}

	token, err := security.CreateServiceToken(&security.ServiceIdentity{Name: *name, DeviceID: *deviceID}, secret, *expires)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
