package user

func ToUserInfo(u User, token string) UserInfo {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}

	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Roles:    roles,
		Token:    token,
	}
}
