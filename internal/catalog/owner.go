package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// systemUserID is how older seed data marks global rows.
const systemUserID = 0

// Owner is either a single user or Global (visible to everyone).
type Owner struct {
	userID int
	global bool
}

func GlobalOwner() Owner {
	return Owner{global: true}
}

func UserOwner(userID int) Owner {
	return Owner{userID: userID}
}

func (o Owner) IsGlobal() bool {
	return o.global
}

// UserID returns the owning user; ok is false for Global.
func (o Owner) UserID() (userID int, ok bool) {
	if o.global {
		return 0, false
	}
	return o.userID, true
}

// VisibleTo reports whether a row with this owner can be read by userID.
func (o Owner) VisibleTo(userID int) bool {
	return o.global || o.userID == userID
}

func (o Owner) String() string {
	if o.global {
		return "global"
	}
	return fmt.Sprintf("user(%d)", o.userID)
}

func ownerFromDB(userID *int) Owner {
	if userID == nil || *userID == systemUserID {
		return GlobalOwner()
	}
	return UserOwner(*userID)
}

func (o Owner) dbValue() *int {
	if o.global {
		return nil
	}
	id := o.userID
	return &id
}

func (o Owner) MarshalJSON() ([]byte, error) {
	if o.global {
		return []byte("null"), nil
	}
	return json.Marshal(o.userID)
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*o = GlobalOwner()
		return nil
	}
	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*o = ownerFromDB(&id)
	return nil
}
