package models

import "time"

// User is a registered person.
//
// Why string IDs and not uuid.UUID?
//   - The store generates every ID as a UUID string, but reference fields
//     (LeaderID, AssignedTo, SenderID, ...) accept whatever the client sends,
//     including "". A typed UUID cannot represent that, a string can.
//
// PasswordHash lives under the "password" key in the persisted document so
// the on-disk layout keeps the original four-collection shape. It must never
// reach a client: handlers respond with PublicUser, not User.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// PublicUser is the client-facing view of a User, with the credential
// omitted.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Session is the bearer-shaped descriptor returned by register and login.
// The token is derived from the user ID; no endpoint verifies it.
type Session struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        PublicUser `json:"user"`
}

// NewSession builds the session descriptor for a user.
func NewSession(u User) Session {
	return Session{
		AccessToken: "token_" + u.ID,
		TokenType:   "bearer",
		User:        u.Public(),
	}
}

// Team groups users under a leader. Members holds user IDs in join order;
// the leader's ID is seeded as the first member at creation, even when it
// is empty. LeaderID is not validated against the users collection.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	LeaderID string   `json:"leader_id"`
	Members  []string `json:"members"`
}

// Task is a unit of work. Status starts as "pending" and is the only field
// mutable after creation; it is a free-form string, there is no enforced
// transition graph. Deadline stays free text; clients send anything from
// RFC dates to "next sprint".
type Task struct {
	ID          string       `json:"id"`
	TeamID      string       `json:"team_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assigned_to"`
	AssignedBy  string       `json:"assigned_by"`
	Deadline    string       `json:"deadline"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Updates     []TaskUpdate `json:"updates"`
}

// TaskUpdate is a progress note appended to a task. It has no lifecycle of
// its own — it exists only inside its parent task's Updates sequence.
type TaskUpdate struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	SentBy  string    `json:"sent_by"`
	SentAt  time.Time `json:"sent_at"`
}

// Message is one entry in the flat chat log. ChatType defaults to "project";
// RecipientID is set only for direct chat. No threading, no read state.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	ChatType    string    `json:"chat_type"`
	RecipientID string    `json:"recipient_id,omitempty"`
}

// Document is the aggregate persisted by the file-backed store: one JSON
// object with the four record collections. Array order is insertion order
// and is returned as-is by every list operation.
type Document struct {
	Users    []User    `json:"users"`
	Teams    []Team    `json:"teams"`
	Tasks    []Task    `json:"tasks"`
	Messages []Message `json:"messages"`
}

// NewDocument returns an empty document with all four collections allocated,
// so a fresh data file serializes with [] rather than null.
func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Teams:    []Team{},
		Tasks:    []Task{},
		Messages: []Message{},
	}
}
