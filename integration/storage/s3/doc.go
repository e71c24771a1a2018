// Package s3 stores documents in Amazon S3 or an S3-compatible service.
//
// Store implements storage.Storage. Every document is one object named
// Prefix + name; objects in deeper "directories" or with names that fail
// storage.ValidateName are ignored by List.
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket:         "docs",
//		Region:         "us-east-1",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	})
//	if err != nil {
//		return err
//	}
//
// Missing objects map to storage.ErrNotFound, a failed conditional create to
// storage.ErrAlreadyExists, and everything else to a *storage.Error.
//
// Tests can inject a mock Client with WithClient.
package s3
