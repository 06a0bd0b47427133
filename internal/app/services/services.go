package services

// Services defined in this package:
// - AuthService: registration, email verification, login and profile management
// - SkillService: skill catalog, autocomplete and tutor filtering
// - RequestService: the learner request board
// - AcceptedRequestService: tutor acceptance and meeting scheduling
// - SessionService: standalone session records
// - AdminService: user administration
