// Package errors provides coded errors for the destiny-api service.
//
// Engine packages (taxonomy, variant, progression, specs, itempower) never
// return errors for data problems: unknown ids are dropped, levels are
// clamped and empty inputs produce empty outputs. Errors from this package
// appear only at I/O boundaries (repositories, config loading) and in request
// validation inside orchestrators and handlers.
//
// Creating errors:
//
//	err := errors.NotFoundf("profile %s/%d not found", ownerID, slot)
//	err := errors.InvalidArgumentf("slot must be between 0 and %d", MaxSlots-1)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load profile")
//	}
//
// Handlers convert to gRPC status errors with ToGRPCError; metadata is carried
// as a google.protobuf.Struct status detail and read back by FromGRPCError.
package errors
