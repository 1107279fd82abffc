// Command webpify converts a folder of PNG/JPEG images to WebP.
//
// The input tree is mirrored into a sibling "<input>-webp" folder; files
// whose output already exists are skipped, so an interrupted run can be
// resumed by running the command again. Conversion is delegated to the
// cwebp binary from libwebp.
package main
