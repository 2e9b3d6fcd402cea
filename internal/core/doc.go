// Package core holds the onboarding domain: turning a multipart form into a
// stored employee record, listing records and exporting them as CSV.
//
// The pieces, leaf first:
//
//   - [FileStore] writes attachments under collision-proof names and
//     [UploadSet] enforces the per-field limits of [UploadSlots].
//   - [AssembleRecord] maps form values and stored file names to an
//     [EmployeeRecord]; absent values become nil (SQL NULL).
//   - [EmployeeStore] persists records; [PostgresStore] is the pgxpool
//     implementation.
//   - [WriteCSV] renders records with the fixed [ExportColumns] header.
//
// [Service] ties them together and is what the web layer calls. It bounds
// concurrent submissions with a [SubmissionLimiter] and can run an optional
// [RecordValidator]; none is installed by default.
//
// Errors from the client's request are [*UploadError] or [*ValidationError]
// (see [IsClientError]); database failures are [*StorageError]. [MapError]
// gives each a support code.
package core
