package utils

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	h := HashPassword("hunter2")
	if h == "hunter2" || h == "" {
		t.Fatal("hash looks wrong")
	}
	if !CheckPassword("hunter2", h) {
		t.Error("correct password rejected")
	}
	if CheckPassword("hunter3", h) {
		t.Error("wrong password accepted")
	}
}
