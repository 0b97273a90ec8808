/*
Package ports defines the driven ports (interfaces) of the fae checker.

These interfaces decouple evaluation from external implementations, so reports
can be kept in memory, on disk, in SQLite or in Redis without the checker
knowing which.

# Key Interfaces

  - ReportStore: persists evaluation reports and lists them by ID.

RunReportStoreContract is a shared test suite every ReportStore adapter runs.
*/
package ports
