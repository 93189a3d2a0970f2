package validation

func CredentialsReq(username, password string) error {
	if username == "" {
		return UsernameIsRequired
	}

	if password == "" {
		return PasswordIsRequired
	}

	return nil
}
