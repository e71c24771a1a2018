// Package clientip extracts real client IP addresses from HTTP requests.
//
// Headers are checked in priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Every candidate is parsed and normalized with net.ParseIP; invalid values and
// 0.0.0.0 are skipped. When nothing valid is found the raw RemoteAddr is returned.
//
//	ip := clientip.GetIP(r)
package clientip
