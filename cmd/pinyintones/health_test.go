package main

import (
	"net"
	"testing"
)

func TestHealthCmd_FailsWithoutServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	if _, _, err := runRoot(t, "health", "--addr", addr); err == nil {
		t.Fatal("want error when no server is listening")
	}
}
