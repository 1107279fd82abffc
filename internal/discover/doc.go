// Package discover walks an input directory tree and derives the work items
// a conversion run will process.
//
// Every regular file with a supported raster extension (png, jpg, jpeg, webp)
// becomes one WorkItem carrying its input path, mirrored output path, and
// path relative to the input root. Inputs that are already WebP keep their
// name and are later copied verbatim; everything else has its extension
// rewritten to .webp. Traversal order is lexicographic so repeated runs see
// the same sequence and skip/resume behavior stays reproducible.
package discover
