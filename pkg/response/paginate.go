package response

// Paginate creates a standardized paginated envelope.
//
// Parameters:
//   - data: Items of the current page; nil is serialized as an empty list
//   - meta: Pagination metadata, passed through without validation
//   - message: Success message; empty selects "Success"
//   - opts: Optional fields (only WithRequestID applies)
//
// Example:
//
//	response.Paginate(users, response.PaginationMeta{
//		Page:       1,
//		PerPage:    10,
//		Total:      50,
//		TotalPages: 5,
//	}, "Users retrieved successfully")
func Paginate[T any](data []T, meta PaginationMeta, message string, opts ...Option) PaginatedEnvelope[T] {
	if data == nil {
		data = []T{}
	}

	o := collect(opts)
	return PaginatedEnvelope[T]{
		Success:   true,
		Message:   orDefault(message, DefaultSuccessMessage),
		Data:      data,
		Meta:      meta,
		Timestamp: timestamp(),
		RequestID: o.requestID,
	}
}
