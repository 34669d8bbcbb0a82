package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "affidavit_access_token"
)
