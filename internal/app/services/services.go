package services

// Services defined in this package:
// - AuthService: operator login, token refresh, profile
// - SponsorService, SchoolService, InstructorService: registry CRUD
// - ProgramService: programs and nested rounds with range validation
// - ScheduleService: schedule entry CRUD with venue/time validation
// - ConflictService: advisory instructor schedule conflict detection
// - RecommendationService: scored instructor candidate ranking
// - MatchingService: matching lifecycle with append-only history
// - SettlementService: settlement derivation, submission and lifecycle
