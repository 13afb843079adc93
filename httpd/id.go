package httpd

import "github.com/google/uuid"

func genID() string {
	return uuid.New().String()
}
