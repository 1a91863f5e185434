package tracing

// Span attribute keys for registry tracing. These constants define
// the semantic conventions for span attributes across the palette
// subsystem.
const (
	// Palette attributes
	AttrPaletteID    = "palette.id"
	AttrPaletteIndex = "palette.index"
	AttrPaletteAdded = "palette.added"

	// Batch attributes
	AttrBatchSize   = "palette.batch_size"
	AttrBatchSource = "palette.source"
	AttrRegistered  = "palette.registered"
	AttrMigrated    = "palette.migrated"
	AttrRestored    = "palette.restored"

	// Registry attributes
	AttrRegistryGUID    = "registry.guid"
	AttrRegistryVersion = "registry.version"
	AttrRegistryCount   = "registry.count"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Span names used by the palette service.
const (
	SpanRegister        = "palette.register"
	SpanRegisterBatch   = "palette.register_batch"
	SpanRegisterBuiltin = "palette.register_builtins"
	SpanEnsureAuthority = "palette.ensure_authority"
	SpanRestore         = "palette.restore"
)
