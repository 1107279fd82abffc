// Package transcode wraps the external cwebp encoder behind the Transcoder
// interface the batch runner consumes.
//
// Each encode is one cwebp process invocation at the configured quality with
// maximum compression effort and sharp-YUV chroma, the settings suited to
// photographic content. Encoder failures are classified as codec errors
// (ErrCodec) so callers can tell a corrupt or unsupported source from plain
// filesystem trouble, and partial outputs are removed on failure so a later
// resume never mistakes them for finished files. Sources that are already
// WebP bypass the encoder and are copied byte for byte.
package transcode
