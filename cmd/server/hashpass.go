package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Magal-W/HebrewWeek/pkg/auth"
)

// cmdHashpass reads a password from stdin and emits its bcrypt hash, either
// to stdout or straight into the hash file the server reads at startup.
func cmdHashpass(args []string) {
	fs := flag.NewFlagSet("hashpass", flag.ExitOnError)
	out := fs.String("out", "", "write the hash to this file instead of stdout")
	fs.Parse(args)

	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "read password: %v\n", err)
		os.Exit(1)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		fmt.Fprintln(os.Stderr, "empty password")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(hash)
		return
	}
	if err := os.WriteFile(*out, []byte(hash+"\n"), 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *out)
}
