// Package manifest loads and validates meta_package.json5 package manifests.
// A manifest declares plain dds dependencies (`depends`, `test_depends`) and
// a required `meta_dds` object whose own dependency lists may carry extra
// build-configuration pairs. Loading is atomic: either a complete Manifest
// comes back, or the first violation found, qualified with the document path.
package manifest
