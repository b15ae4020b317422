package service

const (
	MsgTransactionUpdated          = "transaction updated successfully"
	MsgTransactionDeleted          = "transaction deleted successfully"
	MsgTransactionRestored         = "transaction restored successfully"
	MsgTransactionDeletedPermanent = "transaction deleted permanently"

	MsgFailedUpdateTransaction          = "failed to update transaction"
	MsgFailedDeleteTransaction          = "failed to delete transaction"
	MsgFailedRestoreTransaction         = "failed to restore transaction"
	MsgFailedDeletePermanentTransaction = "failed to delete transaction permanently"

	MsgTravelGalleryCreated = "travel gallery created successfully"
	MsgTravelGalleryDeleted = "travel gallery deleted successfully"

	MsgFailedCreateTravelGallery = "failed to create new travel gallery"
	MsgFailedDeleteTravelGallery = "failed to delete travel gallery"
	MsgCapacityExceeded          = "The amount of travel galleries has exceeded capacity (max %d items)"

	MsgFailedBeginTransaction  = "failed to start database transaction"
	MsgFailedCommitTransaction = "failed to save changes"
)
