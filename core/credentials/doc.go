// Package credentials verifies usernames and passwords against a static,
// read-only set of bcrypt hashes loaded from a YAML file.
//
//	store, err := credentials.LoadFile("users.yml")
//	if err != nil {
//		return err
//	}
//	if store.Authenticate(username, password) {
//		// signed in
//	}
//
// Hash produces entries for the file; `doccms hash-password` wraps it.
package credentials
